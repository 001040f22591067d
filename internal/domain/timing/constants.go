package timing

// DefaultProgressInterval is the number of processed blocks between two progress lines
const DefaultProgressInterval = 10000

// TraceLineSeparator terminates every duration written to the trace
const TraceLineSeparator = '\n'

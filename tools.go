package deepexn

const (
	ErrorField      = "error"
	KindField       = "kind"
	StackTraceField = "stack_trace"
)

type LogRecord struct {
	level      string
	msg        string
	attributes map[string]any
}

func (r *LogRecord) AddAttrs(key string, value any) {
	r.attributes[key] = value
}

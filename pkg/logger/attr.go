package logger

import "log/slog"

// Error records err under "error". A nil err yields an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

func Component(name string) slog.Attr {
	return slog.String("component", name)
}

func RequestID(id string) slog.Attr {
	return slog.String("request_id", id)
}

// Form records the identifier of a validated form.
func Form(id string) slog.Attr {
	return slog.String("form", id)
}

// Field records a field name.
func Field(name string) slog.Attr {
	return slog.String("field", name)
}

// Status records an aggregate form status.
func Status(s string) slog.Attr {
	return slog.String("status", s)
}

// Transition records a status change.
func Transition(from, to string) slog.Attr {
	return slog.Group("transition", slog.String("from", from), slog.String("to", to))
}

// Validators records validator names, e.g. the failing ones.
func Validators(names []string) slog.Attr {
	return slog.Any("validators", names)
}

func Event(name string) slog.Attr {
	return slog.String("event", name)
}

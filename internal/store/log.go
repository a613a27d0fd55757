package store

import "log/slog"

// LogChanges subscribes logger to every change at debug level.
func (t *Todos) LogChanges(logger *slog.Logger) (unsubscribe func()) {
	return t.Subscribe(func(c Change) {
		logger.Debug("todos changed",
			"op", c.Op.String(),
			"index", c.Index,
			"revision", c.Revision,
			"items", t.Len(),
			"remaining", t.RemainingCount(),
			"filter", t.Filter().String(),
		)
	})
}

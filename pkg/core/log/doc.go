// Package log is the structured logger behind the list trace observer and
// the strlist command.
//
// Loggers are values built by chaining With* calls; each call returns a
// copy, so a logger handed to an observer never changes underneath it.
//
//	logger := sllog.NewWithConfig(sllog.Config{
//		Level:  sllog.LevelTrace,
//		Format: sllog.FormatLogfmt,
//		Name:   "strlist",
//	})
//
//	logger.Trace("operation-entered", sllog.Fields{"op": "Insert", "index": 3})
//
//	timer := logger.StartTimer("Sort")
//	list.Sort()
//	timer.Stop("operation-completed")
//
// Entries at LevelAudit are written whatever the minimum level.
package log

// Package maxslog provides:
//
// - An ordered log of calculation notifications (severity, routine, component, message, data items)
// - Require* checks that turn missing or zero inputs into DEBUG_ERROR notifications
// - A file mirror that rewrites the complete kernelNotifications document after every change
//
// Design policy:
// - Keep only public APIs in the root package; put machinery under internal/.
// - Place the wire format under document/, file sinks under sink/, predicates under query/, and the CLI under cmd/maxslog.
// - Pass the Logger explicitly (or through a context) instead of sharing a global.
//
// Typical usage:
//
//	log := maxslog.New(maxslog.WithAppInfo("kisssoft", "2024"))
//	if !log.Activate("/tmp/run.maxs") {
//		// the reason has been logged; the log keeps working in memory
//	}
//	log.Log(routine.TR06, 5, "TR06 plugin", maxslog.SeverityInfo)
//	log.RequireNonNullQuantity(routine.TR06, 5, nil, "elastic_modulus")
//
//	errs := log.Filter(query.Severity(maxslog.SeverityError, maxslog.SeverityDebugError))
package maxslog

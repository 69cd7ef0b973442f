// Package health serves liveness and readiness probes.
//
// LivenessHandler always answers 200. ReadinessHandler runs a set of named
// Checks concurrently under a shared timeout and answers 503 if any fails:
//
//	r.Get("/health/live", health.LivenessHandler())
//	r.Get("/health/ready", health.ReadinessHandler(health.Checks{
//		"mail_provider": resend.Healthcheck(sender),
//	}, health.WithTimeout(2*time.Second), health.WithLogger(log)))
//
// Probes answer in plain text ("OK" or "Service Unavailable") unless the
// client asks for JSON with ?format=json or an Accept header:
//
//	{"status":"unhealthy","checks":{"mail_provider":{"status":"unhealthy","error":"resend: api key not configured"}}}
//
// A check that panics is reported as ErrCheckFailed; one that outlives the
// timeout is reported as ErrCheckTimeout.
package health

// Package internal is the HTTP application runtime: a chi router behind a
// small Context/HandlerFunc/Middleware model, JSON error rendering, health
// probes, static file serving and a server loop with graceful shutdown.
//
// Handlers return errors instead of writing failure responses themselves.
// The app's ErrorHandler turns them into {"error": "..."} bodies; an
// *HTTPError chooses the status and client-facing message.
//
//	app := internal.New(
//	    internal.WithLogger(log),
//	    internal.WithMiddleware(middlewares.RequestID(), middlewares.Recover()),
//	    internal.WithHandlers(handlers.NewContact(relay)),
//	    internal.WithHealthChecks(internal.WithReadinessCheck("mail_provider", check)),
//	)
//	err := app.Run(":8080", internal.Logger(log))
//
// Every layer of a request, global middleware included, shares one
// *ResponseWriter, so Written and Status reflect what was actually sent.
package internal

// Package infrastructure provides concrete implementations of the interfaces
// defined in the core and api packages.
//
// The infrastructure package is organized by technical concern:
//
// - http/standard: net/http backed HTTP client, one attempt per call
// - logger/logrus: logrus logger writing JSON or text, optionally to a rotating file
// - ratelimit/memory: per-key token buckets held in go-cache
// - ratelimit/redis: fixed window counters shared through Redis
//
// # HTTP Client
//
//	client := standard.NewStandardHTTPClient(30*time.Second,
//	    standard.WithTransport(&middleware.LoggingRoundTripper{Logger: logger}))
//	resp, err := client.Get(ctx, "http://product:7001/product/1")
//	if err != nil {
//	    // Handle error
//	}
//	defer resp.Body().Close()
//
// # Logger
//
//	logger, err := logrus.NewLogrusLogger(logrus.Config{Level: "info", Format: "json"})
//	logger.Info("Processing request", map[string]interface{}{
//	    "product_id": 1,
//	})
//
// # Rate Limiters
//
//	limiter := memory.NewLimiter(100, time.Minute)
//	allowed := limiter.Allow(ctx, "203.0.113.7")
package infrastructure

// Package api provides the HTTP API layer for the product composite service.
// It uses the Huma framework on top of a Chi router for OpenAPI documentation
// and request validation.
//
// # Architecture
//
// - server.go: Huma API configuration, CORS and middleware chain
// - handlers/: HTTP request handlers
// - dto/: response DTOs and the mappers from domain models
// - middleware/: request logging, request ID propagation and rate limiting
//
// # Endpoints
//
//	GET /product-composite/{productId}   product with recommendations and reviews
//	GET /health                          liveness probe
//	GET /openapi.json                    generated OpenAPI document
//	GET /docs                            interactive documentation
//
// # Usage Example
//
//	humaAPI, router := api.NewAPIWithMiddleware(api.APIConfig{
//	    Logger:  logger,
//	    Limiter: memory.NewLimiter(100, time.Minute),
//	})
//
//	handlers.NewCompositeHandler(compositeService, logger).RegisterRoutes(humaAPI)
//	handlers.NewHealthHandler().RegisterRoutes(humaAPI)
//
//	http.ListenAndServe(":7000", router)
//
// # Error Handling
//
// Composite failures are returned as a flat JSON body rather than RFC 7807:
//
//	{
//	    "timestamp": "2024-05-01T12:00:00Z",
//	    "path": "/product-composite/2",
//	    "status": 404,
//	    "error": "Not Found",
//	    "message": "NOT FOUND: 2"
//	}
//
// NotFound maps to 404, InvalidInput to 422 and anything else to 500.
package api

// Package core contains the business logic of the product composite service.
// It has no dependency on the HTTP server and can be embedded directly.
//
// The core package is organized into several sub-packages:
//
// - domain: Product, Recommendation, Review and the ProductAggregate
// - errors: NotFound and InvalidInput domain errors and the status translator
// - integration: backend client with a per-call error policy
// - composite: the aggregator calling product, recommendations and reviews in order
// - interfaces: contracts for external dependencies (HTTP, logger) and services
//
// # Usage Example
//
//	deps := interfaces.Dependencies{
//	    HTTPClient: myHTTPClient, // implements interfaces.HTTPClient
//	    Logger:     myLogger,     // implements interfaces.Logger
//	}
//
//	svc := integration.NewIntegration(deps, integration.Endpoints{
//	    ProductURL:        "http://product:7001/product/",
//	    RecommendationURL: "http://recommendation:7002/recommendation?productId=",
//	    ReviewURL:         "http://review:7003/review?productId=",
//	})
//
//	aggregator := composite.NewCompositeService(svc, svc, svc, myLogger, "cmp/10.0.0.1:7000")
//	aggregate, err := aggregator.GetProductComposite(ctx, 1)
package core

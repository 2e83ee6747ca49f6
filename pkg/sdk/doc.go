// Package genie provides an embedded Go client for the product catalog
// retrieval engine. The client loads a catalog once, builds the term-weight
// model in process, and answers queries without any network dependency.
//
//	client, _ := genie.New(genie.WithCatalogFile("data/docs.json"))
//	matches := client.Search("battery life of pro laptop", 3)
//	answer := client.Answer("noise cancellation earbuds")
//
// Catalogs can also be supplied directly:
//
//	client, _ := genie.New(genie.WithDocuments(docs))
//
// The client is immutable after New and safe for concurrent use.
package genie

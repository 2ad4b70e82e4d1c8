// Package catalog provides an HTTP client for a TMDB-compatible movie catalog.
//
// # Overview
//
// The client issues two read-only requests and decodes their JSON bodies:
//
//   - GET {base}/discover/movie?api_key={key}: the discover listing
//   - GET {base}/movie/{id}?api_key={key}: full detail for one movie
//
// Every call is a fresh request. There is no caching, no retry and no
// pagination; the first discover page is all the application shows.
//
// # Client Usage
//
//	client, err := catalog.NewClient(catalog.ClientConfig{
//		BaseURL: cfg.APIURL,
//		APIKey:  cfg.APIKey,
//	}, logger)
//	if err != nil {
//		return err
//	}
//	movies, err := client.FetchDiscoverList(ctx)
//
// # Error Handling
//
// Transport failures, non-2xx responses and undecodable bodies are all
// reported as *RemoteServiceError. StatusCode is zero when no response was
// received. The API key travels in the query string, so transport errors are
// rewritten without the request URL and logs only carry the path.
//
// # Images
//
// Poster and backdrop paths are relative fragments. ImageURL joins them with
// the configured image base URL; images themselves are never downloaded.
package catalog

// Package youtube provides a typed client for the YouTube Data API search endpoint.
//
// The package models every legal search parameter as an immutable request value,
// encodes it into the query string the API expects, performs a single GET and
// decodes the JSON reply into a typed result tree.
//
// # Usage
//
// Build a request from an API key and chain the parameters you need:
//
//	key := youtube.NewAPIKey(os.Getenv("YT_API_KEY"))
//	req := youtube.NewSearchList(key).
//		Q("rust lang").
//		MaxResults(1).
//		ItemType(youtube.ItemTypeVideo)
//
//	client := youtube.NewClient(
//		youtube.WithLogger(logger),
//		youtube.WithTimeout(10*time.Second),
//	)
//
//	resp, err := client.Search(ctx, req)
//	if err != nil {
//		log.Fatal(err)
//	}
//
// Every setter returns a copy, so a base request can be shared and specialised
// without affecting other callers. Parameters left at their default value never
// appear in the encoded query string.
//
// # Error Handling
//
// Search returns one of the following error types:
//
//   - SerializationError: the request could not be encoded
//   - ConnectionError: the transport failed or the body could not be read
//   - APIError: the API answered with a non-2xx status
//   - DeserializationError: the body did not match the response schema
//
// DeserializationError keeps the raw body so unexpected payloads can be inspected:
//
//	var derr *youtube.DeserializationError
//	if errors.As(err, &derr) {
//		fmt.Println(derr.Body)
//	}
package youtube

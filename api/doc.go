// Package api exposes a CV collection over HTTP.
//
// Routes:
//
//	GET    /health
//	POST   /search              keyword search: {"term", "scope"}
//	POST   /query               natural-language question
//	GET    /cvs                 list records in collection order
//	POST   /cvs                 add a record
//	POST   /cvs/upload          multipart upload of CV documents
//	GET    /cvs/{id}
//	PATCH  /cvs/{id}            merge the given fields into the record
//	DELETE /cvs/{id}
//	POST   /cvs/{id}/tags
//	DELETE /cvs/{id}/tags/{tag}
//
// Errors are rendered as {"error": code, "message": text}.
package api

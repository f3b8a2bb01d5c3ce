// Package qualtrics implements the workflows layered on top of the raw API
// client: waiting out asynchronous response exports, saving export archives,
// generating single-use survey links and emptying contact lists. The client
// issues single API calls; anything that needs sequencing or polling lives
// here.
package qualtrics

// Package wh40k holds the catalogue and army list records shared by the
// engine, the repositories and the transport layer. JSON field names match the
// catalogue document and the persisted army list format.
package wh40k

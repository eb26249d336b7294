package postgres

// Schema exposes the embedded bootstrap schema to tests.
var Schema = schema

// Package doris implements the database client: a single lazily opened
// connection to a Doris FE over the MySQL wire protocol, with query
// execution, schema introspection, bulk import, file-based load, and
// delimited export built on top of it.
package doris

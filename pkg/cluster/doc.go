// Package cluster implements the cluster manager: a thin wrapper over the
// FE HTTP control-plane API (node status, query profiling, metrics, node
// administration) plus a handful of SQL-driven admin operations layered on
// an owned database client.
package cluster

// Package demodb is an in-process stand-in for the hosted backend behind
// the sales dashboard. It reproduces the client's fluent query surface
// over seeded in-memory tables, so demo deployments run with no network,
// no credentials and no persistence.
//
// A Client is created once and shared; each call site builds a fresh
// query:
//
//	client := demodb.New(demodb.Config{})
//
//	res := client.From("leads").
//		Select("*").
//		Eq("status", "novo").
//		Order("created_at", demodb.Descending()).
//		Exec(ctx)
//
// Results arrive in a {Data, Count, Error} envelope matching the hosted
// client's response shape. Empty results are not errors: filtering on a
// value no row has, or querying a table name that does not exist, yields
// zero rows and a nil error.
//
// Authentication, realtime channels and RPC calls are satisfied by
// always-succeeding stubs so feature code needs no demo-versus-production
// branches.
package demodb

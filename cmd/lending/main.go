package main

import "os"

// @title Lending Catalog API
// @version 1.0
// @description Members, catalog items and loans with overdue fines and lending statistics.

// @host localhost:8080
// @BasePath /api/v1
func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

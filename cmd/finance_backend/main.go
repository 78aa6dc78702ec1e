package main

import (
	"os"

	"github.com/SscSPs/retail_finance_core/internal/commands"
)

// @title Retail Finance Core API
// @version 1.0
// @description Double-entry ledger, transaction recording, payroll approval and financial reports for a retail business.

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

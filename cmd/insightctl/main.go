package main

import (
	"os"

	"github.com/neomartinez30/extract-medical-insights-from-amazon-healthlake-with-bedrock/internal/insightctl"
)

func main() { os.Exit(insightctl.Main()) }

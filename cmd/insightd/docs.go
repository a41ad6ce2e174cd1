package main

// General API documentation for swaggo. Run `make swagger-gen` to generate docs.
//
// @title           insightd API
// @version         1.0
// @description     HTTP API for browsing Amazon HealthLake FHIR data through Athena and summarizing it with Bedrock models.
//
// @contact.name   insightd maintainers
// @contact.url    https://github.com/neomartinez30/extract-medical-insights-from-amazon-healthlake-with-bedrock
//
// @license.name   MIT-0
// @license.url    https://github.com/aws/mit-0
//
// @BasePath  /
//
// @schemes http

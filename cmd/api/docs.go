// Package main is the metadata service entrypoint.
//
// Gnosis Metadata extracts bibliographic metadata from text via an LLM
// provider and serves persisted content metadata records.
//
// @title Gnosis Metadata API
// @version 1.0
// @description LLM-backed bibliographic metadata extraction and content metadata lookup.
//
// @BasePath /
// @schemes http https
//
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
// @description Pre-shared service key. All /api routes require it; health and docs do not.
package main

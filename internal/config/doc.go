// Package config loads askroute configuration.
//
// Settings come from an optional YAML file, then environment variables
// override credentials (BRAVE_API_KEY, BING_API_KEY, GOOGLE_PSE_KEY,
// GOOGLE_PSE_CX, SERPAPI_KEY, GROQ_API_KEY, OPENAI_API_KEY,
// DEEPSEEK_API_KEY, ANTHROPIC_API_KEY) and a few knobs
// (ASKROUTE_SEARCH_MODE, ASKROUTE_LOG_LEVEL).
//
// Example file:
//
//	log_level: debug
//	search:
//	  mode: accurate
//	  max_results: 5
//	  cache_ttl: 2m
//	race:
//	  providers: [brave, bing, groq]
//	generator:
//	  backend: anthropic
//	location:
//	  city: Lisbon
//	  country: Portugal
//
// Missing credentials are never an error: the affected provider is built
// disabled and simply contributes no results.
package config

// Package geminisdk provides a Go SDK for driving the Gemini CLI with a
// Claude-SDK-compatible API.
//
// The SDK runs the gemini CLI as a subprocess, parses its output into typed
// messages, and yields them as a lazy sequence. Code written against the
// Claude SDK message model (assistant messages with content blocks, a
// terminal result message) works unchanged against Gemini.
//
// # Basic Usage
//
// For one-shot queries, use the Query function:
//
//	ctx := context.Background()
//	for msg, err := range geminisdk.Query(ctx, "What is 2+2?") {
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    switch m := msg.(type) {
//	    case *geminisdk.AssistantMessage:
//	        for _, block := range m.Content {
//	            if text, ok := block.(*geminisdk.TextBlock); ok {
//	                fmt.Println(text.Text)
//	            }
//	        }
//	    case *geminisdk.ResultMessage:
//	        fmt.Printf("Completed in %dms\n", m.DurationMs)
//	    }
//	}
//
// # Output Parsing
//
// The Gemini CLI does not always emit structured output, so the SDK carries
// two parser strategies. When the installed CLI supports --output-format
// json, its NDJSON stream is decoded directly. Otherwise an LLM-assisted
// parser imposes structure on the free text via an OpenAI-compatible
// extraction endpoint, degrading to verbatim text when the backend is
// unavailable. Use WithParser to force a variant.
//
// # Logging
//
// By default, logging is disabled. Use WithLogger for detailed operation
// tracking:
//
//	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
//	for msg, err := range geminisdk.Query(ctx, "Hello", geminisdk.WithLogger(logger)) {
//	    ...
//	}
//
// Setting the GEMINI_SDK_DEBUG environment variable enables debug logging
// to stderr without code changes.
//
// # Error Handling
//
// The SDK provides typed errors for different failure scenarios:
//
//	for msg, err := range geminisdk.Query(ctx, prompt) {
//	    if err != nil {
//	        if cliErr, ok := errors.AsType[*geminisdk.CLINotFoundError](err); ok {
//	            log.Fatalf("Gemini CLI not installed, searched: %v", cliErr.SearchedPaths)
//	        }
//	        if procErr, ok := errors.AsType[*geminisdk.ProcessError](err); ok {
//	            log.Fatalf("CLI failed with exit code %d: %s", procErr.ExitCode, procErr.Stderr)
//	        }
//	        log.Fatal(err)
//	    }
//	    ...
//	}
//
// # Requirements
//
// This SDK requires the Gemini CLI to be installed and available in your
// system PATH. You can specify a custom CLI path using the WithCliPath
// option. The LLM-assisted parser additionally needs an API key in
// OPENAI_API_KEY, GEMINI_API_KEY, or GOOGLE_API_KEY.
package geminisdk

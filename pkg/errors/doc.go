// Package errors provides structured error types for better observability
// and programmatic error handling across the application.
//
// Example usage:
//
//	err := errors.WrapWithContext(
//	    errors.ErrCodeUpstream,
//	    "failed to fetch lyric document",
//	    ctx.Err(),
//	    map[string]interface{}{
//	        "id":     id,
//	        "format": format,
//	    },
//	)
package errors

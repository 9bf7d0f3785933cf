// Package pkgvalidator validates request payloads using struct tags.
//
// It wraps github.com/go-playground/validator/v10 and reports failures as
// pkgerror validation errors naming the offending JSON fields.
package pkgvalidator

/*
Package errors implements the error values shared by all extensions.

Reuse as many root errors from this package as possible and register custom
package errors only when absolutely necessary. A custom root error is declared
once, at program startup, with Register(code, description). Codes are unique;
registering a code twice panics.

Create instances with ErrXyz.New("..."), ErrXyz.Newf or Wrap(err, "...") at the
point of failure so that a stack trace is attached. Only the innermost wrap
records the stack trace.

Test the kind of an error with ErrXyz.Is(err). Wrapping is transparent for Is.

Once you have an error, fmt formatting gives more context

	%s is just the error message
	%+v is the full stack trace
*/
package errors

// Package sys is the cgo layer binding the native libktx (KTX-Software)
// library. It exposes untyped handles (unsafe.Pointer) and integer error
// codes; the typed, safe API lives in the parent ktx package.
//
// Building requires a compiled libktx and its headers. The public ktx.h is
// not enough: the stream struct this package populates lives in libktx's
// private lib/ headers, so the include path must point at a KTX-Software
// checkout, e.g.
//
//	CGO_CFLAGS="-I/path/to/KTX-Software/include -I/path/to/KTX-Software/lib"
//	CGO_LDFLAGS="-L/path/to/KTX-Software/build -lktx"
//
// The struct layouts in those headers are an ABI contract: the headers used
// to compile this package must match the libktx build that gets linked.
package sys

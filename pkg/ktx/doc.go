// Package ktx reads, writes, transcodes and compresses KTX1/KTX2 texture
// containers by binding the native libktx (KTX-Software) codec library.
//
// The native library performs all container parsing and compression math;
// this package contributes the memory-safe plumbing around it: a stream
// bridge that lets libktx do I/O against any io.ReadWriteSeeker, and
// deterministic ownership of the opaque native texture handles.
//
// A Texture is produced from a TextureSource (explicit creation info, or a
// Stream to decode from) and disposed of with Close. Version-specific
// operations hang off the Ktx1/Ktx2 projections:
//
//	stream, _ := ktx.NewStream(file)
//	defer stream.Close()
//	tex, err := ktx.NewTexture(&ktx.StreamSource{Stream: stream, Flags: ktx.LoadImageData})
//	if err != nil { ... }
//	defer tex.Close()
//	if k2 := tex.Ktx2(); k2 != nil {
//		err = k2.TranscodeBasis(ktx.TranscodeBC7RGBA, 0)
//	}
package ktx

// Package buffer provides the owning contiguous storage behind vectors.
//
// A Buffer holds a single run of float32 or float64 elements and a generation
// counter that advances whenever the storage may have moved or shrunk. Views
// into a Buffer record the generation they were taken at and use it to detect
// that they no longer describe the current storage.
package buffer

// Package buffer provides a reusable float64 scratch buffer and a pool of
// them. The decimation engine draws its working window from a Pool so that
// repeated calls do not allocate.
package buffer

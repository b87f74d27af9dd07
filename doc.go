// Package lvmatrix is a small, exact dense-matrix toolkit: a float64 matrix
// type with value semantics, Laplace-expansion determinants, cofactors and
// inverses, plus a TOML document format and a command-line front end.
//
// What is inside?
//
//	A pure-Go library and one tool:
//		• Dense matrix: owned row-major storage, bounds-checked access,
//		  deep copy, ownership transfer, shape-preserving resize
//		• Arithmetic: in-place Sum/Difference/Scale/Multiply and
//		  value-returning Add/Sub/Mul/Scale facades
//		• Algebra: Transpose, Determinant, Cofactors, Inverse, Trace
//		• Equality: absolute tolerance (1e-7 by default, per-instance option)
//		• matrixctl: run any operation over named matrices in a TOML file
//
// Layout:
//
//	matrix/            - Dense type, options, validators, algebra kernels
//	internal/matfile/  - TOML document of named matrices (decode/encode)
//	internal/cli/      - matrixctl command tree (cobra, viper, charmbracelet/log)
//	cmd/matrixctl/     - matrixctl entry point
//
// Quick example:
//
//	a, _ := matrix.NewFromRows([][]float64{{1, 2}, {3, 4}})
//	inv, _ := a.Inverse() // [[-2, 1], [1.5, -0.5]]
//
// Determinant and Cofactors are factorial in n and meant for small matrices.
//
//	go get github.com/katalvlaran/lvmatrix/matrix
package lvmatrix

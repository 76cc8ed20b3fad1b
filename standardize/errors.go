package standardize

import "errors"

// ErrNonPositiveK indicates New was given a k <= 0.
var ErrNonPositiveK = errors.New("standardize: k must be positive")

// ErrDegenerateCoverage indicates StandardizeEdges was asked to
// rescale a graph whose total weight equals the weight carried by
// edges already below threshold, making the rescale factor undefined.
var ErrDegenerateCoverage = errors.New("standardize: total weight minus weak weight is zero")

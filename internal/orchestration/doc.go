// Package orchestration coordinates the concurrent execution of convolution
// paths and the analysis of their results. It owns the comparison logic that
// cross-checks independent paths against each other, while presentation is
// delegated to a ResultPresenter implementation.
package orchestration

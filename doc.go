// Package projgp inspects projected Gaussian-Process models of lick
// behavior: models whose input is a window of lagged stimulus values that
// the kernel projects onto a small bank of learned filters.
//
// The filters of independently fit models are identifiable only up to order
// and sign, so everything starts by canonicalizing them. From there the
// packages cover the analyses read off a fitted model:
//
//	matrix/     dense row-major storage, kernels, minimum-norm least squares
//	params/     statically named model parameters and their resolution
//	filters/    filter canonicalization into an immutable FilterBank
//	stimulus/   causal lag-window projection of raw stimulus traces
//	gpmodel/    the predictive-model contract and native input layout
//	surface/    2-D slices of the response surface in filter space
//	hazard/     per-trial model inputs and lick-probability trajectories
//	lick/       filter activations at the time of a lick
//	trials/     etable trial tables and per-signal summaries
//
// Fitting, loading archives and plotting live outside this module.
//
// Quick example:
//
//	bank, _ := filters.Canonicalize(ps)
//	s, _ := surface.Sample(model, bank, surface.DefaultGrid())
//	fmt.Println(s.Mean.Rows(), s.Cond)
//
// See examples/ for a runnable walkthrough.
package projgp

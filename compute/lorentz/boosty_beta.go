package lorentz

func init() {
	register(OpBoostYBeta, "generic", priorityGeneric, any1, axisBetaKernel(axisY))
}

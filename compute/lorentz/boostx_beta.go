package lorentz

func init() {
	register(OpBoostXBeta, "generic", priorityGeneric, any1, axisBetaKernel(axisX))
}

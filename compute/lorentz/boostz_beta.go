package lorentz

func init() {
	register(OpBoostZBeta, "generic", priorityGeneric, any1, axisBetaKernel(axisZ))
}

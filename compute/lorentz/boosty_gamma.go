package lorentz

func init() {
	register(OpBoostYGamma, "generic", priorityGeneric, any1, axisGammaKernel(axisY))
}

package lorentz

func init() {
	register(OpBoostXGamma, "generic", priorityGeneric, any1, axisGammaKernel(axisX))
}

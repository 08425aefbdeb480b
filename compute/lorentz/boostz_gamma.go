package lorentz

func init() {
	register(OpBoostZGamma, "generic", priorityGeneric, any1, axisGammaKernel(axisZ))
}

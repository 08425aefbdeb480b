package batch

var ResetKernels = resetKernels

package embedding

import "golang.org/x/sys/cpu"

func init() {
	if cpu.ARM64.HasASIMD {
		dotUnroll = 8
	}
}

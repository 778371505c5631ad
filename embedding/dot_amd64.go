package embedding

import "golang.org/x/sys/cpu"

func init() {
	if cpu.X86.HasAVX512 || cpu.X86.HasAVX2 {
		dotUnroll = 8
	}
}

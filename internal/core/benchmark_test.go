package core

import "testing"

func BenchmarkBuilderFinalize(b *testing.B) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		builder := NewPackageBuilder()
		builder.SetNames("zlib", NameSrc|NameTrack|NameProjectSeed).
			SetNames("zlib", NameBin|NameDisplay).
			SetVersion("1.3.1").
			SetSummary("compression library").
			AddMaintainer("maintainer@example.com").
			AddCategory("libs").
			AddLicense("Zlib").
			AddLink(UpstreamHomepage, "https://zlib.net/").
			AddLink(UpstreamRepository, "https://github.com/madler/zlib#readme")
		builder.SetExtraFieldOne("origin", "main")

		if _, err := builder.Finalize(); err != nil {
			b.Fatalf("Finalize failed: %v", err)
		}
	}
}

func BenchmarkSetNames(b *testing.B) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		NewPackageBuilder().SetNames("zlib", AllNames)
	}
}

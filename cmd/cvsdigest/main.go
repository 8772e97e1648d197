// Command cvsdigest runs the master digester against a small built-in
// demo fixture and logs the resulting trunk tip and tags. Parsing real CVS
// ,v files is out of scope (spec.md §1); this binary exists to exercise
// internal/digest end to end the way a real caller (the fusion stage)
// would, wiring config, diagnostics, and the fixture builder together.
package main

import (
	"log"
	"os"
	"time"

	"github.com/go-git/go-billy/v5/osfs"

	"github.com/dbremner/cvs-fast-export/internal/config"
	"github.com/dbremner/cvs-fast-export/internal/diag"
	"github.com/dbremner/cvs-fast-export/internal/digest"
	"github.com/dbremner/cvs-fast-export/internal/fixture"
)

func demoMaster() (*fixture.Master, error) {
	base := time.Date(2020, 1, 1, 12, 0, 0, 0, time.UTC)

	return fixture.New("README.md").
		Version(fixture.VersionSpec{Number: "1.1", Date: base, Author: "alice", Log: "initial import"}).
		Version(fixture.VersionSpec{Number: "1.2", Date: base.Add(time.Hour), Author: "alice", Log: "fix typo",
			Branches: []string{"1.2.2.1"}}).
		Version(fixture.VersionSpec{Number: "1.2.2.1", Date: base.Add(2 * time.Hour), Author: "bob", Log: "stabilization work"}).
		Version(fixture.VersionSpec{Number: "1.2.2.2", Date: base.Add(3 * time.Hour), Author: "bob", Log: "more stabilization"}).
		Symbol("RELEASE_1_2", "1.2.0.2").
		Build()
}

func main() {
	cfg := config.DefaultConfig()

	if err := os.MkdirAll(cfg.DataRoot, 0o755); err != nil {
		log.Fatalf("cvsdigest: cannot create data root %s: %v", cfg.DataRoot, err)
	}

	fs := osfs.New(cfg.DataRoot)
	warn := diag.NewSink(fs, "warnings.log")

	pm, err := demoMaster()
	if err != nil {
		log.Fatalf("cvsdigest: building demo master: %v", err)
	}

	tags := &digest.CollectingTagService{}
	trunkTip, err := digest.Digest(pm, digest.SystemClock{}, tags, warn)
	if err != nil {
		log.Fatalf("cvsdigest: digesting %s: %v", pm.ExportPath(), err)
	}

	log.Printf("digested %s, trunk tip %s", pm.ExportPath(), trunkTip.Number)
	for c, names := range tags.Tags {
		log.Printf("  tag(s) %v on %s", names, c.Number)
	}
}

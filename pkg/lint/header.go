package lint

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/olypsys/stylecheck/pkg/domain"
)

const (
	copyrightOwner = "Olypsys Technologies Ltd."

	// testFilePrefix marks C++ test sources, which carry the short
	// banner without a companion-header reference.
	testFilePrefix = "Test"
)

// ExpectedBanner returns the copyright banner a file of the given kind
// and basename must begin with for the given calendar year. C++ test
// sources (basename starting with "Test") get the short form; headers
// and the main.cpp entry point get the \file/\brief form; other C++
// sources reference their companion header. Xml files carry no banner
// requirement, reported as the empty string.
func ExpectedBanner(kind domain.FileKind, base string, year int) string {
	switch kind {
	case domain.KindCSource:
		if strings.HasPrefix(base, testFilePrefix) {
			return fmt.Sprintf("///\n/// Copyright (c) %d %s All rights reserved.\n///",
				year, copyrightOwner)
		}
		if base == entryPointBase {
			return fileBriefBanner(base, year)
		}
		header := strings.TrimSuffix(base, filepath.Ext(base)) + ".hpp"
		return fmt.Sprintf("///\n/// Copyright (c) %d %s All rights reserved.\n///\n/// See %s for documentation.\n///",
			year, copyrightOwner, header)
	case domain.KindCHeader:
		return fileBriefBanner(base, year)
	case domain.KindJava, domain.KindKotlin:
		return appBanner(year, "Android")
	case domain.KindSwift:
		return appBanner(year, "iOS")
	}
	return ""
}

func fileBriefBanner(base string, year int) string {
	return fmt.Sprintf("///\n/// Copyright (c) %d %s All rights reserved.\n///\n/// \\file %s\n///\n/// \\brief",
		year, copyrightOwner, base)
}

func appBanner(year int, platform string) string {
	return fmt.Sprintf("///\n/// Copyright (c) %d %s All rights reserved.\n///\n/// This file is part of the Olypsys %s App.\n///\n",
		year, copyrightOwner, platform)
}

// checkBanner compares exactly the first len(banner) bytes of the
// content against the expected banner. Any deviation inside that
// prefix, the year included, yields one diagnostic; content beyond the
// prefix is never inspected.
func (c *Checker) checkBanner(f *File) []domain.Diagnostic {
	banner := ExpectedBanner(f.Kind, f.Base, c.year)
	if banner == "" || strings.HasPrefix(f.Content, banner) {
		return nil
	}
	return []domain.Diagnostic{{
		Path:    f.Path,
		Rule:    "Header.Invalid",
		Message: "Invalid copyright header",
	}}
}

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package grouping splits a roster into random fixed-size groups.

# Generating

	groups := grouping.Generate(participants, 4, random.Default)

Participants are shuffled with Fisher-Yates, so every ordering is equally
likely, then cut into consecutive chunks. For R participants and size G
there are ceil(R/G) groups; all but the last have exactly G members and
the last has the remainder. An empty roster yields no groups. Sizes below
2 are clamped to 2.

# Exporting

Export writes CSV with a UTF-8 byte order mark:

	組別,姓名
	第 1 組,王大明
	第 1 組,"Chen, Jason"

Fields containing commas, quotes or line breaks are quoted. ExportFilename
builds a dated, path-safe download name.

# Printing

Print renders a plain text table of all groups.
*/
package grouping

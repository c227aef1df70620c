package vendors

func init() {
	Register(Rules{
		Name:      "Dell",
		SourceURL: "https://www.dell.com/support/kbdoc/en-us/000302312/dell-pcs-that-support-the-2023-secure-boot-certificate",
		MinRows:   3,
		// Dell mixes navigation and legal tables into the page; the
		// matrix is the only one mentioning both the platform column and
		// BIOS.
		AllKeywords: []string{"Platform", "BIOS"},
		Model: FieldRule{
			Aliases:  []string{"Platform", "Model"},
			Fallback: "Column1",
		},
		Version: FieldRule{
			Aliases: []string{
				"Minimum BIOS Version with 2023 Certificate",
				"Minimum BIOS version with 2023 Certificate",
				"Minimum BIOS Version",
			},
			Fallback: "Column2",
		},
	})
}

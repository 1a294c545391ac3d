package static

import _ "embed"

// PromptMd contains the embedded antiptrn instruction file distributed to AI
// coding assistants.
//
//go:embed antiptrn.md
var PromptMd string

// IndexHTML contains the embedded index.html landing page.
//
//go:embed index.html
var IndexHTML string

// InstallSh contains the embedded install script served at /install.sh.
//
//go:embed install.sh
var InstallSh string

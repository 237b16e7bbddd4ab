package cmd

import "path/filepath"

// credentialEnvVar gates the sessions that talk to live services. System and
// snippet tests are skipped, never failed, when it is unset.
const credentialEnvVar = "GOOGLE_APPLICATION_CREDENTIALS"

// defaultManifest returns the built-in catalog wrapped in manifest metadata.
// A --manifest file overlays this via manifest.merge.
func defaultManifest() *manifest {
	return &manifest{
		Name:        "library maintenance",
		Description: "Lint, format, test, and documentation sessions for a Python library checkout",
		Sessions:    defaultSessions(),
	}
}

// defaultSessions returns the built-in session catalog. Command lines mirror
// the library's established CI invocations; sessions that need credentials or
// optional test trees carry guards so they skip cleanly on bare checkouts.
func defaultSessions() []sessionEntry {
	systemTestPath := filepath.Join("tests", "system.py")
	systemTestFolder := filepath.Join("tests", "system")
	snippetsPath := filepath.Join("docs", "snippets.py")
	snippetsTablePath := filepath.Join("docs", "snippets_table.py")
	docsBuildDir := filepath.Join("docs", "_build")

	pipInstall := func(pkgs ...string) commandStep {
		return commandStep{Command: "python", Args: append([]string{"-m", "pip", "install"}, pkgs...)}
	}

	return []sessionEntry{
		{
			Name:        "lint",
			Description: "Run linters: fails on lint errors or sufficiently serious code quality issues",
			Install:     []commandStep{pipInstall("flake8", "black")},
			Run: []commandStep{
				{Command: "black", Args: []string{"--check", "google", "tests", "docs"}},
				{Command: "flake8", Args: []string{"google", "tests"}},
			},
		},
		{
			Name:        "blacken",
			Description: "Format code to uniform standard",
			Install:     []commandStep{pipInstall("black")},
			Run: []commandStep{
				{Command: "black", Args: []string{"google", "tests", "docs"}},
			},
		},
		{
			Name:        "lint_setup_py",
			Description: "Verify that setup.py is valid (including RST check)",
			Install:     []commandStep{pipInstall("docutils", "pygments")},
			Run: []commandStep{
				{Command: "python", Args: []string{"setup.py", "check", "--restructuredtext", "--strict"}},
			},
		},
		{
			Name:        "unit",
			Description: "Run the unit test suite",
			Install: []commandStep{
				pipInstall("mock", "pytest", "pytest-cov"),
				pipInstall("-e", "."),
			},
			Run: []commandStep{
				{
					Command: "py.test",
					Args: []string{
						"--quiet",
						"--cov=google.cloud",
						"--cov=tests.unit",
						"--cov-append",
						"--cov-config=.coveragerc",
						"--cov-report=",
						"--cov-fail-under=0",
						filepath.Join("tests", "unit"),
					},
					Posargs: true,
				},
			},
		},
		{
			Name:        "cover",
			Description: "Run the final coverage report and erase coverage data",
			Install:     []commandStep{pipInstall("coverage", "pytest-cov")},
			Run: []commandStep{
				{Command: "coverage", Args: []string{"report", "--show-missing", "--fail-under=99"}},
				{Command: "coverage", Args: []string{"json", "-o", "coverage.json"}},
				{Command: "coverage", Args: []string{"erase"}},
			},
			Coverage: &coverageGate{JSON: "coverage.json", FailUnder: 99},
		},
		{
			Name:            "system",
			Description:     "Run the system test suite",
			RequiresEnv:     []string{credentialEnvVar},
			RequiresAnyPath: []string{systemTestPath, systemTestFolder},
			Install: []commandStep{
				// Pre-release gRPC for system tests.
				pipInstall("--pre", "grpcio"),
				pipInstall("mock", "pytest"),
				pipInstall("-e", "test_utils/"),
				pipInstall("-e", "."),
			},
			Run: []commandStep{
				{Command: "py.test", Args: []string{"--quiet", systemTestPath}, Posargs: true, SkipUnlessPath: systemTestPath},
				{Command: "py.test", Args: []string{"--quiet", systemTestFolder}, Posargs: true, SkipUnlessPath: systemTestFolder},
			},
		},
		{
			Name:            "snippets",
			Description:     "Run the documentation example snippets",
			RequiresEnv:     []string{credentialEnvVar},
			RequiresAnyPath: []string{snippetsPath, snippetsTablePath},
			Install: []commandStep{
				pipInstall("mock", "pytest"),
				pipInstall("-e", "test_utils/"),
				pipInstall("-e", "."),
			},
			Run: []commandStep{
				{Command: "py.test", Args: []string{"--quiet", snippetsPath}, Posargs: true, SkipUnlessPath: snippetsPath},
				{Command: "py.test", Args: []string{"--quiet", snippetsTablePath}, Posargs: true, SkipUnlessPath: snippetsTablePath},
			},
		},
		{
			Name:        "docs",
			Description: "Build the docs for this library",
			Clean:       []string{docsBuildDir},
			Install: []commandStep{
				pipInstall("-e", "."),
				pipInstall("sphinx", "alabaster", "recommonmark"),
			},
			Run: []commandStep{
				{
					Command: "sphinx-build",
					Args: []string{
						"-W", // warnings as errors
						"-T", // show full traceback on exception
						"-N", // no colors
						"-b", "html",
						"-d", filepath.Join("docs", "_build", "doctrees") + string(filepath.Separator),
						"docs" + string(filepath.Separator),
						filepath.Join("docs", "_build", "html") + string(filepath.Separator),
					},
				},
			},
		},
		{
			Name:        "docfx",
			Description: "Build the docfx yaml files for this library",
			Clean:       []string{docsBuildDir},
			Install: []commandStep{
				pipInstall("-e", "."),
				pipInstall("sphinx", "alabaster", "recommonmark", "sphinx-docfx-yaml"),
			},
			Run: []commandStep{
				{
					Command: "sphinx-build",
					Args: []string{
						"-T", // show full traceback on exception
						"-N", // no colors
						"-D",
						"extensions=sphinx.ext.autodoc," +
							"sphinx.ext.autosummary," +
							"docfx_yaml.extension," +
							"sphinx.ext.intersphinx," +
							"sphinx.ext.coverage," +
							"sphinx.ext.napoleon," +
							"sphinx.ext.todo," +
							"sphinx.ext.viewcode," +
							"recommonmark",
						"-b", "html",
						"-d", filepath.Join("docs", "_build", "doctrees") + string(filepath.Separator),
						"docs" + string(filepath.Separator),
						filepath.Join("docs", "_build", "html") + string(filepath.Separator),
					},
				},
			},
		},
	}
}

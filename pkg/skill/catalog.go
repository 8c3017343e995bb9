package skill

// Catalog returns the full skill set registered at process start.
//
// The sandbox skills mirror the tool functions implemented by the execution
// service; their names, signatures, and policies are part of the external
// contract and must stay in sync with the sandbox runtime.
func Catalog() []*Skill {
	return []*Skill{
		{
			Name:        "read_file",
			Version:     "1.0.0",
			Signature:   "read_file(path: str) -> str",
			Description: "Read a file relative to the workspace root.",
			Target:      TargetExecutor,
			Policy:      ReadOnlyPolicy(10),
		},
		{
			Name:        "write_file",
			Version:     "1.0.0",
			Signature:   "write_file(path: str, content: str) -> None",
			Description: "Write content to a file (creates parent dirs automatically).",
			Target:      TargetExecutor,
			Policy:      WritePolicy(10),
		},
		{
			Name:        "list_files",
			Version:     "1.0.0",
			Signature:   `list_files(path: str = ".", pattern: str = "**/*") -> list[str]`,
			Description: "List files matching a glob pattern under path.",
			Target:      TargetExecutor,
			Policy:      ReadOnlyPolicy(10),
		},
		{
			Name:        "search_code",
			Version:     "1.0.0",
			Signature:   `search_code(pattern: str, path: str = ".") -> list[dict]`,
			Description: "Search for a regex pattern using ripgrep. Returns [{file, line, text}, ...].",
			Target:      TargetExecutor,
			Policy:      ReadOnlyPolicy(15),
		},
		{
			Name:        "git_diff",
			Version:     "1.0.0",
			Signature:   `git_diff(base: str = "HEAD") -> str`,
			Description: "Show the unified diff vs base commit.",
			Target:      TargetExecutor,
			Policy:      ReadOnlyPolicy(10),
		},
		{
			Name:        "apply_patch",
			Version:     "1.0.0",
			Signature:   "apply_patch(diff: str) -> dict",
			Description: "Apply a unified diff to the workspace using git apply. Returns {exit_code, stdout, stderr, success}.",
			Target:      TargetExecutor,
			Policy:      WritePolicy(30),
		},
		{
			// Build commands may produce target/ files.
			Name:        "run_command",
			Version:     "1.0.0",
			Signature:   "run_command(cmd: list[str], timeout: int = 300) -> dict",
			Description: "Run an allowlisted command (mvn, java, git, rg). Returns {exit_code, stdout, stderr}.",
			Target:      TargetExecutor,
			Policy:      WritePolicy(300),
		},
		{
			Name:        "check_policy",
			Version:     "1.0.0",
			Signature:   "check_policy(diff: str) -> PolicyReport",
			Description: "Check a unified diff for policy violations: disabled tests, secrets, oversized patches.",
			Target:      TargetInProcess,
			Policy:      Policy{TimeoutSec: 5},
			Execute:     checkPolicy,
		},
	}
}

package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"

	"taskhub/cmd/taskctl/client"
	"taskhub/cmd/taskctl/config"
	"taskhub/cmd/taskctl/output"

	"github.com/urfave/cli/v3"
)

// TaskCommand returns the task command with subcommands
func TaskCommand() *cli.Command {
	return &cli.Command{
		Name:  "task",
		Usage: "Manage tasks",
		Commands: []*cli.Command{
			createTaskCommand(),
			listTaskCommand(),
			getTaskCommand(),
			updateTaskCommand(),
			deleteTaskCommand(),
			logsTaskCommand(),
		},
	}
}

// createTaskCommand returns the create subcommand
func createTaskCommand() *cli.Command {
	return &cli.Command{
		Name:  "create",
		Usage: "Create a new task",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "title",
				Usage:    "Task title",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "command",
				Usage: "Command to execute (inline)",
			},
			&cli.StringFlag{
				Name:  "file",
				Usage: "Path to script file to execute",
			},
			&cli.StringFlag{
				Name:     "image",
				Usage:    "Container image the command runs in",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "description",
				Usage:    "Task description",
				Required: true,
			},
		},
		Action: createTaskAction,
	}
}

// createTaskAction handles the create task command
func createTaskAction(ctx context.Context, c *cli.Command) error {
	if err := validateCreateFlags(c); err != nil {
		return err
	}

	command := c.String("command")
	if c.IsSet("file") {
		var err error
		command, err = readScriptFile(c.String("file"))
		if err != nil {
			return fmt.Errorf("failed to read script file: %w", err)
		}
	}

	req := client.NewCreateTaskRequest(client.TaskAttributes{
		Title:       c.String("title"),
		Command:     command,
		Image:       c.String("image"),
		Description: c.String("description"),
	})

	api, err := newClient(c)
	if err != nil {
		return err
	}

	resp, err := api.CreateTask(ctx, req)
	if err != nil {
		return fmt.Errorf("failed to create task: %w", err)
	}

	return printResult(c, resp)
}

// validateCreateFlags validates the create command flags
func validateCreateFlags(c *cli.Command) error {
	hasCommand := c.IsSet("command")
	hasFile := c.IsSet("file")

	if hasCommand && hasFile {
		return fmt.Errorf("cannot use both --command and --file flags")
	}

	if !hasCommand && !hasFile {
		return fmt.Errorf("must provide either --command or --file flag")
	}

	return nil
}

// readScriptFile reads and returns the contents of a script file
func readScriptFile(filePath string) (string, error) {
	content, err := os.ReadFile(filePath)
	if err != nil {
		return "", err
	}
	return string(content), nil
}

// listTaskCommand returns the list subcommand
func listTaskCommand() *cli.Command {
	return &cli.Command{
		Name:   "list",
		Usage:  "List tasks",
		Action: listTaskAction,
	}
}

// listTaskAction handles the list task command
func listTaskAction(ctx context.Context, c *cli.Command) error {
	api, err := newClient(c)
	if err != nil {
		return err
	}

	tasks, err := api.ListTasks(ctx)
	if err != nil {
		return fmt.Errorf("failed to list tasks: %w", err)
	}

	return printResult(c, tasks)
}

// getTaskCommand returns the get subcommand
func getTaskCommand() *cli.Command {
	return &cli.Command{
		Name:      "get",
		Usage:     "Get task details",
		ArgsUsage: "<task-id>",
		Action:    getTaskAction,
	}
}

// getTaskAction handles the get task command
func getTaskAction(ctx context.Context, c *cli.Command) error {
	taskID, err := parseTaskID(c)
	if err != nil {
		return err
	}

	api, err := newClient(c)
	if err != nil {
		return err
	}

	task, err := api.GetTask(ctx, taskID)
	if err != nil {
		return fmt.Errorf("failed to get task: %w", notFound(taskID, err))
	}

	return printResult(c, task)
}

func updateTaskCommand() *cli.Command {
	return &cli.Command{
		Name:      "update",
		Usage:     "Change the title or description of a task",
		ArgsUsage: "<task-id>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "title",
				Usage: "New title",
			},
			&cli.StringFlag{
				Name:  "description",
				Usage: "New description",
			},
		},
		Action: updateTaskAction,
	}
}

func updateTaskAction(ctx context.Context, c *cli.Command) error {
	taskID, err := parseTaskID(c)
	if err != nil {
		return err
	}

	req := &client.UpdateTaskRequest{
		Title:       c.String("title"),
		Description: c.String("description"),
	}
	if req.Title == "" && req.Description == "" {
		return fmt.Errorf("must provide --title or --description")
	}

	api, err := newClient(c)
	if err != nil {
		return err
	}

	task, err := api.UpdateTask(ctx, taskID, req)
	if err != nil {
		return fmt.Errorf("failed to update task: %w", notFound(taskID, err))
	}

	return printResult(c, task)
}

func deleteTaskCommand() *cli.Command {
	return &cli.Command{
		Name:      "delete",
		Usage:     "Delete a task that is not running",
		ArgsUsage: "<task-id>",
		Action:    deleteTaskAction,
	}
}

func deleteTaskAction(ctx context.Context, c *cli.Command) error {
	taskID, err := parseTaskID(c)
	if err != nil {
		return err
	}

	api, err := newClient(c)
	if err != nil {
		return err
	}

	if err := api.DeleteTask(ctx, taskID); err != nil {
		return fmt.Errorf("failed to delete task: %w", notFound(taskID, err))
	}

	fmt.Fprintf(c.Root().Writer, "task %d deleted\n", taskID)
	return nil
}

func logsTaskCommand() *cli.Command {
	return &cli.Command{
		Name:      "logs",
		Usage:     "Print the logs of a task",
		ArgsUsage: "<task-id>",
		Action:    logsTaskAction,
	}
}

func logsTaskAction(ctx context.Context, c *cli.Command) error {
	taskID, err := parseTaskID(c)
	if err != nil {
		return err
	}

	api, err := newClient(c)
	if err != nil {
		return err
	}

	logs, err := api.GetTaskLogs(ctx, taskID)
	if err != nil {
		return fmt.Errorf("failed to get task logs: %w", notFound(taskID, err))
	}

	fmt.Fprintln(c.Root().Writer, logs)
	return nil
}

// parseTaskID reads the single positional task id argument
func parseTaskID(c *cli.Command) (uint, error) {
	if c.Args().Len() != 1 {
		return 0, fmt.Errorf("task ID is required")
	}

	id, err := strconv.ParseUint(c.Args().Get(0), 10, 0)
	if err != nil {
		return 0, fmt.Errorf("invalid task ID %q", c.Args().Get(0))
	}
	return uint(id), nil
}

// newClient resolves the server URL: --server flag > env/config file > default.
// The config file is only read when no flag is given.
func newClient(c *cli.Command) (client.Client, error) {
	if c.IsSet("server") {
		return client.NewHTTPClient(c.String("server")), nil
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	return client.NewHTTPClient(cfg.GetServerURL()), nil
}

// notFound names the task when the server says it does not exist.
func notFound(taskID uint, err error) error {
	var apiErr *client.APIError
	if errors.As(err, &apiErr) && apiErr.IsNotFound() {
		return fmt.Errorf("task %d not found: %w", taskID, err)
	}
	return err
}

func printResult(c *cli.Command, data any) error {
	formatter, err := output.NewFormatter(c.String("output"))
	if err != nil {
		return err
	}

	out, err := formatter.Format(data)
	if err != nil {
		return fmt.Errorf("failed to format output: %w", err)
	}

	fmt.Fprintln(c.Root().Writer, out)
	return nil
}

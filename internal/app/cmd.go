package app

// Command はアプリケーションの起動モードを表す。
type Command string

const (
	// CommandBootstrap はストアを初期化し、セッションを復元して終了することを示す。
	// 組み込みホストの起動前検証用。
	CommandBootstrap Command = "bootstrap"
	// CommandMigrate はデータベースマイグレーションを実行することを示す。
	CommandMigrate Command = "migrate"
)

// ParseCommand はコマンドライン引数からサブコマンドを解析する。
// 引数が空またはサポート外のコマンドの場合はCommandBootstrapを返す。
func ParseCommand(args []string) Command {
	if len(args) == 0 {
		return CommandBootstrap
	}

	switch args[0] {
	case "migrate":
		return CommandMigrate
	case "bootstrap":
		return CommandBootstrap
	default:
		return CommandBootstrap
	}
}

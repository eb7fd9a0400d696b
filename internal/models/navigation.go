package models

// NavModule: пункт бокового меню (GET /modules/ отдаёт уже дерево)
type NavModule struct {
	ModuleID       string      `json:"module_id"`
	ModuleName     string      `json:"module_name"`
	ModuleType     string      `json:"module_type"`
	ModuleOrder    int         `json:"module_order"`
	ParentModuleID *string     `json:"parent_module_id"`
	Children       []NavModule `json:"children"`
}

// Permission: строка матрицы прав на дашборде
type Permission struct {
	Module  string `json:"module"`
	View    bool   `json:"view"`
	Add     bool   `json:"add"`
	Edit    bool   `json:"edit"`
	Delete  bool   `json:"delete"`
	Approve bool   `json:"approve"`
}

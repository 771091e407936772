package php

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractImports_UseStatements(t *testing.T) {
	source := `<?php

namespace App\Http\Controllers;

use App\Models\User;
use App\Services\Billing as Billing;
use \Psr\Log\LoggerInterface;
use App\Models\User;

class UserController
{
    use Concerns\HandlesErrors;
}
`
	imports, err := Extractor{}.ExtractImports([]byte(source), "app/Http/Controllers/UserController.php")
	require.NoError(t, err)

	assert.Equal(t, []string{
		"App/Models/User",
		"App/Services/Billing",
		"Psr/Log/LoggerInterface",
	}, imports)
}

func TestExtractImports_IgnoresFunctionAndGroupUses(t *testing.T) {
	source := `<?php
use function App\Support\helper;
use App\Models\{User, Team};
`
	imports, err := Extractor{}.ExtractImports([]byte(source), "index.php")
	require.NoError(t, err)

	assert.Empty(t, imports)
}

func TestNamespacePath(t *testing.T) {
	assert.Equal(t, "App/Models/User", NamespacePath(`App\Models\User`))
	assert.Equal(t, "Vendor/Pkg", NamespacePath(`\Vendor\Pkg`))
}

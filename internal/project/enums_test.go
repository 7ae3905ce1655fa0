package project

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFramework(t *testing.T) {
	tests := []struct {
		in      string
		want    Framework
		wantErr bool
	}{
		{"nextjs", NextJS, false},
		{"Next", NextJS, false},
		{"next.js", NextJS, false},
		{"tanstack-start", TanStackStart, false},
		{"TanStack", TanStackStart, false},
		{"remix", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFramework(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseDatabase(t *testing.T) {
	tests := []struct {
		in      string
		want    Database
		wantErr bool
	}{
		{"", DatabaseNone, false},
		{"none", DatabaseNone, false},
		{"Convex", Convex, false},
		{"neon", NeonDrizzle, false},
		{"neon-drizzle", NeonDrizzle, false},
		{"mongo", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseDatabase(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDatabaseIsRelational(t *testing.T) {
	assert.False(t, DatabaseNone.IsRelational())
	assert.False(t, Convex.IsRelational())
	assert.True(t, NeonDrizzle.IsRelational())
}

func TestParsePackageManager(t *testing.T) {
	for _, pm := range AllPackageManagers() {
		got, err := ParsePackageManager(string(pm))
		require.NoError(t, err)
		assert.Equal(t, pm, got)
	}

	got, err := ParsePackageManager("PNPM")
	require.NoError(t, err)
	assert.Equal(t, Pnpm, got)

	_, err = ParsePackageManager("deno")
	assert.Error(t, err)
}

func TestPackageManagerCommands(t *testing.T) {
	tests := []struct {
		pm      PackageManager
		install string
		dev     string
		run     string
		exec    string
	}{
		{Npm, "npm install", "npm run dev", "npm run build", "npx drizzle-kit push"},
		{Pnpm, "pnpm install", "pnpm dev", "pnpm build", "pnpm exec drizzle-kit push"},
		{Yarn, "yarn install", "yarn dev", "yarn build", "yarn drizzle-kit push"},
		{Bun, "bun install", "bun run dev", "bun run build", "bun drizzle-kit push"},
	}

	for _, tt := range tests {
		t.Run(string(tt.pm), func(t *testing.T) {
			assert.Equal(t, tt.install, tt.pm.InstallCommand())
			assert.Equal(t, tt.dev, tt.pm.DevCommand())
			assert.Equal(t, tt.run, tt.pm.RunCommand("build"))
			assert.Equal(t, tt.exec, tt.pm.ExecCommand("drizzle-kit push"))
		})
	}
}

func TestTitles(t *testing.T) {
	assert.Equal(t, "Next.js", NextJS.Title())
	assert.Equal(t, "TanStack Start", TanStackStart.Title())
	assert.Equal(t, "Neon + Drizzle", NeonDrizzle.Title())
	assert.Equal(t, "None", DatabaseNone.Title())
}

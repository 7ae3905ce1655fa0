package composer

import "strings"

const tailwindCSS = `@tailwind base;
@tailwind components;
@tailwind utilities;
`

const resetCSS = `* {
  box-sizing: border-box;
  padding: 0;
  margin: 0;
}
`

const postcssConfig = `module.exports = {
  plugins: {
    tailwindcss: {},
    autoprefixer: {},
  },
}
`

func tailwindConfig(content []string) string {
	var b strings.Builder
	b.WriteString("/** @type {import('tailwindcss').Config} */\n")
	b.WriteString("module.exports = {\n")
	b.WriteString("  content: [\n")
	for _, glob := range content {
		b.WriteString("    '" + glob + "',\n")
	}
	b.WriteString("  ],\n")
	b.WriteString("  theme: {\n")
	b.WriteString("    extend: {},\n")
	b.WriteString("  },\n")
	b.WriteString("  plugins: [],\n")
	b.WriteString("}\n")
	return b.String()
}

func componentsJSON(fs featureSpec) string {
	return marshalJSON(map[string]any{
		"$schema": "https://ui.shadcn.com/schema.json",
		"style":   "new-york",
		"rsc":     fs.rsc,
		"tsx":     true,
		"tailwind": map[string]any{
			"config":       "tailwind.config.js",
			"css":          fs.stylesheet,
			"baseColor":    "neutral",
			"cssVariables": false,
			"prefix":       "",
		},
		"aliases": map[string]string{
			"components": "@/components",
			"utils":      "@/lib/utils",
			"ui":         "@/components/ui",
			"lib":        "@/lib",
			"hooks":      "@/hooks",
		},
		"iconLibrary": "lucide",
	})
}

const utilsTS = `import { clsx, type ClassValue } from 'clsx'
import { twMerge } from 'tailwind-merge'

export function cn(...inputs: ClassValue[]) {
  return twMerge(clsx(inputs))
}
`

const convexSchema = `import { defineSchema, defineTable } from "convex/server";
import { v } from "convex/values";

export default defineSchema({
  // Define your tables here
  // example: exampleTable: defineTable({ name: v.string() }),
});
`

const drizzleSchema = `import { pgTable, serial, text, timestamp } from 'drizzle-orm/pg-core';

export const users = pgTable('users', {
  id: serial('id').primaryKey(),
  name: text('name').notNull(),
  email: text('email').notNull(),
  createdAt: timestamp('created_at').defaultNow(),
});
`

const drizzleConfig = `import type { Config } from 'drizzle-kit';

export default {
  schema: './db/schema.ts',
  out: './drizzle',
  driver: 'pg',
  dbCredentials: {
    connectionString: process.env.DATABASE_URL!,
  },
} satisfies Config;
`
